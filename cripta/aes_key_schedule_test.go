package cripta

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func wordHex(w [4]byte) string {
	return hex.EncodeToString(w[:])
}

func TestKeyExpansionVectors(t *testing.T) {
	testCases := []struct {
		name  string
		bits  int
		key   string
		words map[int]string
	}{
		{
			name: "AES-128",
			bits: 128,
			key:  "2b7e151628aed2a6abf7158809cf4f3c",
			words: map[int]string{
				0:  "2b7e1516",
				3:  "09cf4f3c",
				4:  "a0fafe17",
				5:  "88542cb1",
				6:  "23a33939",
				7:  "2a6c7605",
				40: "d014f9a8",
				41: "c9ee2589",
				42: "e13f0cc8",
				43: "b6630ca6",
			},
		},
		{
			name: "AES-192",
			bits: 192,
			key:  "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			words: map[int]string{
				5:  "522c6b7b",
				6:  "fe0c91f7",
				51: "01002202",
			},
		},
		{
			name: "AES-256",
			bits: 256,
			key: "603deb1015ca71be2b73aef0857d7781" +
				"1f352c073b6108d72d9810a30914dff4",
			words: map[int]string{
				7:  "0914dff4",
				8:  "9ba35411",
				59: "706c631e",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ks, err := BuildKeySchedule(mustHex(t, tc.key), tc.bits)
			require.NoError(t, err)

			for i, want := range tc.words {
				require.Equalf(t, want, wordHex(ks.Word(i)), "w[%d]", i)
			}
		})
	}
}

func TestKeyScheduleShape(t *testing.T) {
	testCases := []struct {
		bits, nk, rounds int
	}{
		{128, 4, 10},
		{192, 6, 12},
		{256, 8, 14},
	}

	for _, tc := range testCases {
		ks, err := BuildKeySchedule(sequentialKey(tc.bits/8), tc.bits)
		require.NoError(t, err)

		require.Equal(t, tc.nk, ks.Nk())
		require.Equal(t, tc.rounds, ks.Rounds())

		// Нулевой раундовый ключ совпадает с началом ключа
		first := ks.RoundKey(0)
		require.Equal(t, sequentialKey(tc.bits / 8)[:BlockSize], first[:])
	}
}

func TestKeyScheduleErrors(t *testing.T) {
	_, err := BuildKeySchedule(make([]byte, 16), 64)
	require.ErrorIs(t, err, ErrInvalidKeySize)

	// Неверный размер проверяется раньше длины
	_, err = BuildKeySchedule(make([]byte, 3), 100)
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = BuildKeySchedule(make([]byte, 24), 128)
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = BuildKeySchedule(nil, 256)
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = NewRijndaelKeySchedule(512)
	require.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestKeyScheduleDeterministic(t *testing.T) {
	rks, err := NewRijndaelKeySchedule(192)
	require.NoError(t, err)

	key := sequentialKey(24)
	a, err := rks.GenerateRoundKeys(key)
	require.NoError(t, err)
	b, err := rks.GenerateRoundKeys(key)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestRoundConstants(t *testing.T) {
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36}
	for i, rc := range want {
		require.Equalf(t, rc, roundConstant(i+1), "rcon[%d]", i+1)
	}
}

func TestRotAndSubWord(t *testing.T) {
	require.Equal(t, [4]byte{0xcf, 0x4f, 0x3c, 0x09},
		rotWord([4]byte{0x09, 0xcf, 0x4f, 0x3c}))
	require.Equal(t, [4]byte{0x8a, 0x84, 0xeb, 0x01},
		subWord([4]byte{0xcf, 0x4f, 0x3c, 0x09}))
}
