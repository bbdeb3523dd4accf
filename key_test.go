package ratkey_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/ratkey"
)

func TestAppendInt(t *testing.T) {
	cases := []struct {
		Int  string
		Want string
	}{
		{"0", "80"},
		{"1", "8101"},
		{"255", "81ff"},
		{"256", "820100"},
		{"-1", "7efe"},
		{"-256", "7dfeff"},
	}
	for _, c := range cases {
		t.Run(c.Int, func(t *testing.T) {
			key := ratkey.AppendInt(nil, bigs(c.Int))
			assert.Equal(t, c.Want, hex.EncodeToString(key))
			z, n, err := ratkey.ReadInt(key)
			require.NoError(t, err)
			assert.Equal(t, len(key), n)
			assert.Equal(t, c.Int, z.String())
		})
	}
}

func TestAppendInt_order(t *testing.T) {
	long := new(big.Int).Lsh(big.NewInt(1), 8*200)
	vals := []*big.Int{
		new(big.Int).Neg(new(big.Int).Add(long, long)),
		new(big.Int).Neg(long),
		bigs("-9802348729234234223423423432456342342342342346547768087384729384729"),
		big.NewInt(-23423),
		big.NewInt(-256),
		big.NewInt(-255),
		big.NewInt(-23),
		big.NewInt(-1),
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(9),
		big.NewInt(10),
		big.NewInt(91),
		big.NewInt(255),
		big.NewInt(256),
		big.NewInt(2342343),
		bigs("87292342342342342342342346547768087384729384729"),
		long,
		new(big.Int).Add(long, long),
	}
	keys := make([][]byte, len(vals))
	for i, z := range vals {
		keys[i] = ratkey.AppendInt(nil, z)
		got, n, err := ratkey.ReadInt(keys[i])
		require.NoError(t, err)
		require.Equal(t, len(keys[i]), n)
		require.Zero(t, got.Cmp(z))
	}
	for i := 1; i < len(keys); i++ {
		assert.Equal(t, -1, bytes.Compare(keys[i-1], keys[i]), "%v vs %v", vals[i-1], vals[i])
	}
}

func TestReadInt_invalid(t *testing.T) {
	cases := []string{
		"",
		"7f",
		"81",
		"8200ff",
		"8100",
		"ff",
		"ff0000000000000001",
		"ff000000000000000101",
		"7e",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			b, err := hex.DecodeString(c)
			require.NoError(t, err)
			_, _, err = ratkey.ReadInt(b)
			assert.ErrorIs(t, err, ratkey.ErrKeyInvalid)
		})
	}
}

func TestLexicalKey(t *testing.T) {
	rs := grid(25, 16)
	keys := make([][]byte, len(rs))
	for i, r := range rs {
		lx := ratkey.LexicalEncodeRat(r)
		keys[i] = ratkey.LexicalKey(lx)
		back, err := ratkey.ParseLexicalKey(keys[i])
		require.NoError(t, err)
		require.Zero(t, ratkey.CompareLexical(lx, back))
	}
	require.True(t, slices.IsSortedFunc(keys, bytes.Compare), "lexical keys are not in numeric order")

	_, err := ratkey.ParseLexicalKey(nil)
	assert.ErrorIs(t, err, ratkey.ErrKeyInvalid)
	_, err = ratkey.ParseLexicalKey([]byte{0x80, 0x82, 0x01})
	assert.ErrorIs(t, err, ratkey.ErrKeyInvalid)
}

func TestPathKey(t *testing.T) {
	cases := []struct {
		Num, Den int64
		Want     string
	}{
		{0, 1, "80"},
		{-1, 1, "40"},
		{1, 1, "c0"},
		{1, 3, "90"},
		{22, 7, "f020"},
	}
	for _, c := range cases {
		p, err := ratkey.Encode(c.Num, c.Den)
		require.NoError(t, err)
		key, err := ratkey.PathKey(p)
		require.NoError(t, err)
		assert.Equal(t, c.Want, hex.EncodeToString(key), "%d/%d", c.Num, c.Den)
		back, err := ratkey.ParsePathKey(key)
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

func TestPathKey_order(t *testing.T) {
	rs := grid(25, 16)
	keys := make([][]byte, len(rs))
	for i, r := range rs {
		key, err := ratkey.PathKey(ratkey.EncodeRat(r))
		require.NoError(t, err)
		keys[i] = key
	}
	for i := 1; i < len(keys); i++ {
		require.Equal(t, -1, bytes.Compare(keys[i-1], keys[i]), "%v vs %v", rs[i-1], rs[i])
	}
}

func TestPathKey_invalid(t *testing.T) {
	_, err := ratkey.PathKey(nil)
	assert.ErrorIs(t, err, ratkey.ErrPathMalformed)
	_, err = ratkey.PathKey(ratkey.Path{1, 0})
	assert.ErrorIs(t, err, ratkey.ErrPathMalformed)
	_, err = ratkey.PathKey(ratkey.Path{1, 2, 1})
	assert.ErrorIs(t, err, ratkey.ErrPathMalformed)

	_, err = ratkey.ParsePathKey(nil)
	assert.ErrorIs(t, err, ratkey.ErrKeyInvalid)
	_, err = ratkey.ParsePathKey([]byte{0x80, 0x00})
	assert.ErrorIs(t, err, ratkey.ErrKeyInvalid)
}

func TestPathKey_long(t *testing.T) {
	p, err := ratkey.Encode(1000, 1)
	require.NoError(t, err)
	key, err := ratkey.PathKey(p)
	require.NoError(t, err)
	assert.Len(t, key, (1001+7)/8)
	assert.Equal(t, strings.Repeat("1", 1001), p.String())
}
