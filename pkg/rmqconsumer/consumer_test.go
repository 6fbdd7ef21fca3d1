package rmqconsumer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fitness-platform-api/config"
	"fitness-platform-api/internal/infrastructure/mq"
)

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		wantAction string
	}
	cases := []tc{
		{"POST -> UserRegistered", "POST", "UserRegistered"},
		{"PUT  -> UserMediaUpdated", "PUT", "UserMediaUpdated"},
		{"DELETE -> UserMediaRemoved", "DELETE", "UserMediaRemoved"},
		{"PATCH -> Unknown", "PATCH", "Unknown"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			c := &Consumer{log: zap.New(core)}

			e := mq.Event{
				Id:     uuid.New(),
				TS:     time.Now().UTC().Truncate(time.Second),
				Method: tt.routingKey,
				UserID: uuid.NewString(),
			}
			body, err := json.Marshal(e)
			require.NoError(t, err)

			err = c.delivery(amqp091.Delivery{RoutingKey: tt.routingKey, Body: body})
			require.NoError(t, err)

			entries := logs.FilterMessage("profile event consumed").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			require.Equal(t, tt.wantAction, fields["action"])
			require.Equal(t, e.UserID, fields["user_uuid"])
		})
	}
}

func Test_delivery_PoisonMessage(t *testing.T) {
	c := &Consumer{log: zap.NewNop()}

	err := c.delivery(amqp091.Delivery{RoutingKey: "POST", Body: []byte("{not json")})
	require.Error(t, err)
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
