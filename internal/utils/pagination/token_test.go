package pagination_test

import (
	"testing"
	"time"

	"github.com/streampay-labs/payrolld/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := time.Date(2026, time.March, 2, 9, 30, 15, 123456789, time.UTC)
	token := pagination.EncodeToken(ts, "payment-42")

	gotTS, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, "payment-42", gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)
}
