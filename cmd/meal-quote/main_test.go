package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"meal-estimator/internal/logger"
	"meal-estimator/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	failed := run(&out, logger.NewNop(), []string{"100", "abc"}, false)

	assert.Equal(t, 1, failed)
	assert.Equal(t,
		"100: Tax: $7.00, Tip: $18.00, Total Price: $125.00\n"+
			"abc: Inputs must be numeric\n",
		out.String())
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	failed := run(&out, logger.NewNop(), []string{"100"}, true)
	require.Zero(t, failed)

	var q pricing.Quote
	require.NoError(t, json.NewDecoder(strings.NewReader(out.String())).Decode(&q))
	assert.Equal(t, pricing.Quote{Amount: 100, Tax: 7, Tip: 18, Total: 125}, q)
}

func TestRunJSONInvalid(t *testing.T) {
	var out bytes.Buffer
	failed := run(&out, logger.NewNop(), []string{"1.2.3"}, true)

	assert.Equal(t, 1, failed)
	assert.JSONEq(t, `{"input":"1.2.3","error":"Inputs must be numeric"}`, out.String())
}
