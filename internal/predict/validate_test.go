package predict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_BoundariesAccepted(t *testing.T) {
	for _, req := range []Request{
		{MaxNewTokens: 1, Temperature: 0.01, TopP: 0.01},
		{MaxNewTokens: 1024, Temperature: 2.0, TopP: 1.0},
		{MaxNewTokens: DefaultNewTokens, Temperature: DefaultTemperature, TopP: DefaultTopP},
	} {
		assert.NoError(t, Validate(req), "%+v", req)
	}
}

func TestValidate_OutOfBounds(t *testing.T) {
	for _, tc := range []struct {
		req   Request
		field string
	}{
		{Request{MaxNewTokens: 0, Temperature: 1, TopP: 1}, "max_new_tokens"},
		{Request{MaxNewTokens: 1025, Temperature: 1, TopP: 1}, "max_new_tokens"},
		{Request{MaxNewTokens: 1, Temperature: 0.001, TopP: 1}, "temperature"},
		{Request{MaxNewTokens: 1, Temperature: 2.5, TopP: 1}, "temperature"},
		{Request{MaxNewTokens: 1, Temperature: 1, TopP: 1.01}, "top_p"},
		{Request{MaxNewTokens: 1, Temperature: 1, TopP: 0}, "top_p"},
	} {
		err := Validate(tc.req)
		require.Error(t, err, "%+v", tc.req)
		assert.True(t, IsBounds(err))
		var be *BoundsError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, tc.field, be.Field)
		assert.Contains(t, be.Error(), tc.field+" must be between")
	}
}
