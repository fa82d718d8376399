package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Second-Serve/backend/agg-svc/internal/domain"
	"github.com/Second-Serve/backend/agg-svc/internal/mocks"
	"github.com/Second-Serve/backend/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "success",
			inputMessage: domain.OrderEvent{
				Type:          domain.OrderPlaced,
				OrderID:       "order-1",
				RestaurantIDs: []string{"rest-1", "rest-2"},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("InvalidateDashboards", mock.Anything, "rest-1", "rest-2").Return(nil).Once()
			},
		},
		{
			name: "store error",
			inputMessage: domain.OrderEvent{
				Type:          domain.OrderPlaced,
				OrderID:       "order-1",
				RestaurantIDs: []string{"rest-1"},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("InvalidateDashboards", mock.Anything, "rest-1").Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "unknown type",
			inputMessage: domain.OrderEvent{
				Type:          "order_cancelled",
				RestaurantIDs: []string{"rest-1"},
			},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
		{
			name:           "no restaurants",
			inputMessage:   domain.OrderEvent{Type: domain.OrderPlaced, OrderID: "order-2"},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessOrder(context.Background(), testCase.inputMessage)
		})
	}
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	placed, err := json.Marshal(domain.OrderEvent{
		Type:          domain.OrderPlaced,
		OrderID:       "order-1",
		RestaurantIDs: []string{"rest-1"},
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: placed}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Run(func(mock.Arguments) {
		cancel()
	}).Once()

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("InvalidateDashboards", mock.Anything, "rest-1").Return(nil).Once()

	service.NewConsumer(reader, mockStore).Start(ctx)
}

func TestConsumer_StartBacksOffOnReadErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls []time.Time
	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker unreachable")).Run(func(mock.Arguments) {
		calls = append(calls, time.Now())
		if len(calls) == 3 {
			cancel()
		}
	}).Times(3)

	consumer := service.NewConsumer(reader, mocks.NewStoreInterface(t))
	consumer.Backoff = 20 * time.Millisecond
	consumer.Start(ctx)

	require.Len(t, calls, 3)
	assert.GreaterOrEqual(t, calls[1].Sub(calls[0]), 20*time.Millisecond)
	assert.GreaterOrEqual(t, calls[2].Sub(calls[1]), 40*time.Millisecond)
}
