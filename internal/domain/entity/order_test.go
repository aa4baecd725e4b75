package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		entity.OrderPending, entity.OrderProcessing, entity.OrderShipped,
		entity.OrderDelivered, entity.OrderCancelled,
	} {
		assert.True(t, entity.ValidOrderStatus(status), status)
	}
	assert.False(t, entity.ValidOrderStatus("Returned"))
	assert.False(t, entity.ValidOrderStatus(""))
	assert.False(t, entity.ValidOrderStatus("pending"), "la enumeración distingue mayúsculas")
}

func TestCanTransition_FlujoFeliz(t *testing.T) {
	assert.True(t, entity.CanTransition(entity.OrderPending, entity.OrderProcessing))
	assert.True(t, entity.CanTransition(entity.OrderProcessing, entity.OrderShipped))
	assert.True(t, entity.CanTransition(entity.OrderShipped, entity.OrderDelivered))
}

func TestCanTransition_Cancelacion(t *testing.T) {
	assert.True(t, entity.CanTransition(entity.OrderPending, entity.OrderCancelled))
	assert.True(t, entity.CanTransition(entity.OrderProcessing, entity.OrderCancelled))
	assert.False(t, entity.CanTransition(entity.OrderShipped, entity.OrderCancelled),
		"una orden enviada ya no puede cancelarse")
}

func TestCanTransition_EstadosTerminales(t *testing.T) {
	for _, to := range []string{
		entity.OrderPending, entity.OrderProcessing, entity.OrderShipped,
		entity.OrderDelivered, entity.OrderCancelled,
	} {
		assert.False(t, entity.CanTransition(entity.OrderDelivered, to), "Delivered es terminal")
		assert.False(t, entity.CanTransition(entity.OrderCancelled, to), "Cancelled es terminal")
	}
}

func TestCanTransition_NoHaySaltosNiRetrocesos(t *testing.T) {
	assert.False(t, entity.CanTransition(entity.OrderPending, entity.OrderShipped))
	assert.False(t, entity.CanTransition(entity.OrderPending, entity.OrderDelivered))
	assert.False(t, entity.CanTransition(entity.OrderProcessing, entity.OrderPending))
	assert.False(t, entity.CanTransition(entity.OrderShipped, entity.OrderProcessing))
}
