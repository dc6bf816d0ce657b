package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkya-store/storefront-service/internal/models"
)

func TestOrderMessage(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Name: "One Piece Vol. 100", Price: 80, Quantity: 2},
		{ProductID: 3, Name: "Shonen Jump 2024 #32", Price: 30, Quantity: 1},
	}

	msg := OrderMessage(lines, 190)

	assert.True(t, strings.HasPrefix(msg, "Hola, me interesan los siguientes productos:\n\n"))
	assert.Contains(t, msg, "1. One Piece Vol. 100 - Cantidad: 2")
	assert.Contains(t, msg, "2. Shonen Jump 2024 #32 - Cantidad: 1")
	assert.Contains(t, msg, "Total: $190")
}

func TestOrderMessageGroupsThousands(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Name: "Nendoroid Makima", Price: 45000, Quantity: 1},
	}

	msg := OrderMessage(lines, 45000)

	assert.Contains(t, msg, "Total: $45.000")
}

func TestOrderMessageEmptyCart(t *testing.T) {
	msg := OrderMessage(nil, 0)

	assert.Contains(t, msg, "Hola, me interesan los siguientes productos:")
	assert.Contains(t, msg, "Total: $0")
}

func TestInquiryMessage(t *testing.T) {
	msg := InquiryMessage("Chainsaw Man Vol. 1")
	assert.Equal(t, "Hola, me interesa el producto: Chainsaw Man Vol. 1", msg)
}
