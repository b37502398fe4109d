package bech32codec

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	payload, err := hex.DecodeString("af79152ac5df276d9a8e1e2e22822f9713474902")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prefix  string
		payload []byte
		want    string
		wantErr error
	}{
		{
			name:    "injective prefix",
			prefix:  "inj",
			payload: payload,
			want:    "inj14au322k9munkmx5wrchz9q30juf5wjgz2cfqku",
		},
		{
			name:    "cosmos prefix",
			prefix:  "cosmos",
			payload: payload,
			want:    "cosmos14au322k9munkmx5wrchz9q30juf5wjgzq37yyy",
		},
		{
			name:    "zero payload",
			prefix:  "inj",
			payload: make([]byte, 20),
			want:    "inj1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqe2hm49",
		},
		{
			name:    "empty prefix",
			prefix:  "",
			payload: payload,
			wantErr: ErrEmptyPrefix,
		},
		{
			name:    "uppercase prefix",
			prefix:  "INJ",
			payload: payload,
			wantErr: ErrIllegalPrefixChar,
		},
		{
			name:    "prefix with separator-adjacent symbol",
			prefix:  "inj-",
			payload: payload,
			wantErr: ErrIllegalPrefixChar,
		},
		{
			name:    "payload exceeding length limit",
			prefix:  "inj",
			payload: make([]byte, 700),
			wantErr: ErrTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.prefix, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		payload, err := hex.DecodeString("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
		require.NoError(t, err)

		encoded, err := Encode("inj", payload)
		require.NoError(t, err)

		prefix, data5, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, "inj", prefix)

		raw, err := ConvertBits(data5, 5, 8, false)
		require.NoError(t, err)
		assert.Equal(t, payload, raw)
	})

	t.Run("corrupted checksum", func(t *testing.T) {
		_, _, err := Decode("inj14au322k9munkmx5wrchz9q30juf5wjgz2cfqkq")
		require.Error(t, err)
		assert.True(t, IsChecksumError(err))
		assert.False(t, IsCharsetError(err))
	})

	t.Run("character outside charset", func(t *testing.T) {
		// 'b' is not part of the bech32 alphabet
		_, _, err := Decode("inj1" + strings.Repeat("b", 39))
		require.Error(t, err)
		assert.True(t, IsCharsetError(err))
		assert.False(t, IsChecksumError(err))
	})

	t.Run("missing separator", func(t *testing.T) {
		_, _, err := Decode("nodivider")
		require.Error(t, err)
		assert.False(t, IsChecksumError(err))
	})
}

func TestEncodeLengthLimit(t *testing.T) {
	// with the 3-char "inj" prefix, a 633-byte payload encodes to exactly
	// MaxAddressLength characters; one more byte pushes past it
	t.Run("largest fitting payload round trips", func(t *testing.T) {
		encoded, err := Encode("inj", make([]byte, 633))
		require.NoError(t, err)
		assert.Len(t, encoded, MaxAddressLength)

		prefix, _, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, "inj", prefix)
	})

	t.Run("oversized payload rejected", func(t *testing.T) {
		_, err := Encode("inj", make([]byte, 634))
		require.ErrorIs(t, err, ErrTooLong)
	})
}

func TestConvertBits(t *testing.T) {
	t.Run("8 to 5 with padding", func(t *testing.T) {
		got, err := ConvertBits([]byte{0xff}, 8, 5, true)
		require.NoError(t, err)
		assert.Equal(t, []byte{31, 28}, got)
	})

	t.Run("5 to 8 with zero leftover bits", func(t *testing.T) {
		got, err := ConvertBits([]byte{31, 28}, 5, 8, false)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff}, got)
	})

	t.Run("non-zero leftover bits rejected without padding", func(t *testing.T) {
		_, err := ConvertBits([]byte{31, 31}, 5, 8, false)
		require.Error(t, err)
	})

	t.Run("value exceeding source width rejected", func(t *testing.T) {
		_, err := ConvertBits([]byte{32}, 5, 8, false)
		require.Error(t, err)
	})
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("inj"))
	assert.NoError(t, ValidatePrefix("cosmos"))
	assert.NoError(t, ValidatePrefix("prefix0"))
	assert.ErrorIs(t, ValidatePrefix(""), ErrEmptyPrefix)
	assert.ErrorIs(t, ValidatePrefix("Inj"), ErrIllegalPrefixChar)
	assert.ErrorIs(t, ValidatePrefix("in j"), ErrIllegalPrefixChar)
}
