package config

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FEE_BASE", "")
	t.Setenv("POLL_PRODUCTS", "")

	s := Load()

	assert.Equal(t, FeeSettings{
		Base:               1.5,
		RouteCorrection:    1.3,
		PerKmRate:          0.5,
		FallbackPercentage: 0.05,
		FallbackFlat:       1.5,
	}, s.Fees)
	assert.Equal(t, time.Second, s.PollProducts)
	assert.Equal(t, 2*time.Second, s.PollRestaurants)
	assert.Equal(t, "RikoChat", s.ChatCollection)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FEE_BASE", "0.8")
	t.Setenv("FEE_ROUTE_CORRECTION", "0.8")
	t.Setenv("POLL_RESTAURANTS", "5s")
	t.Setenv("BACKEND_BURST", "3")

	s := Load()

	assert.Equal(t, 0.8, s.Fees.Base)
	assert.Equal(t, 0.8, s.Fees.RouteCorrection)
	assert.Equal(t, 5*time.Second, s.PollRestaurants)
	assert.Equal(t, 3, s.BackendBurst)
}

func TestGetEnvHelpers_BadValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{name: "float", value: "abc", check: func(t *testing.T) { assert.Equal(t, 2.5, getEnvFloat("CFG_TEST", 2.5)) }},
		{name: "int", value: "1.5", check: func(t *testing.T) { assert.Equal(t, 7, getEnvInt("CFG_TEST", 7)) }},
		{name: "duration", value: "10", check: func(t *testing.T) { assert.Equal(t, time.Minute, getEnvDuration("CFG_TEST", time.Minute)) }},
		{name: "bool", value: "maybe", check: func(t *testing.T) { assert.True(t, getEnvBool("CFG_TEST", true)) }},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("CFG_TEST", testCase.value)
			testCase.check(t)
		})
	}
}

func TestNewKafkaWriter(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "localhost:9092")

	w := NewKafkaWriter("orders")

	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.False(t, w.Async)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
