package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth"
)

var testSecret = []byte("test-signing-secret")

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec(testSecret, nil)

	id := auth.Identity{
		SubjectID:   "u1",
		DisplayName: "Ada",
		Email:       "ada@x.com",
	}

	signed, err := codec.Issue(id)
	require.NoError(t, err)

	got, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, id, *got)
	assert.Empty(t, got.PictureURL)
}

func TestIssueVerifyOptionalFieldsAbsent(t *testing.T) {
	codec := NewCodec(testSecret, nil)

	// only the subject is mandatory
	signed, err := codec.Issue(auth.Identity{SubjectID: "u2"})
	require.NoError(t, err)

	got, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.SubjectID)
	assert.Empty(t, got.DisplayName)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.PictureURL)
}

func TestVerifyExpired(t *testing.T) {
	issued := time.Now()

	codec := NewCodec(testSecret, func() time.Time { return issued })
	signed, err := codec.Issue(auth.Identity{SubjectID: "u1"})
	require.NoError(t, err)

	// still valid just before the window closes
	almost := NewCodec(testSecret, func() time.Time { return issued.Add(TTL - time.Minute) })
	_, err = almost.Verify(signed)
	require.NoError(t, err)

	// invalid at exactly issuedAt + TTL
	late := NewCodec(testSecret, func() time.Time { return issued.Add(TTL) })
	_, err = late.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	codec := NewCodec(testSecret, nil)

	signed, err := codec.Issue(auth.Identity{SubjectID: "u1", Email: "ada@x.com"})
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	// mutate a single character of the payload segment
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	_, err = codec.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := NewCodec(testSecret, nil)

	signed, err := codec.Issue(auth.Identity{SubjectID: "u1"})
	require.NoError(t, err)

	other := NewCodec([]byte("a-different-secret"), nil)
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := NewCodec(testSecret, nil)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestIssueDiffersAcrossInstants(t *testing.T) {
	id := auth.Identity{SubjectID: "u1", DisplayName: "Ada"}

	at := time.Unix(1700000000, 0)
	first := NewCodec(testSecret, func() time.Time { return at })
	second := NewCodec(testSecret, func() time.Time { return at.Add(time.Second) })

	tok1, err := first.Issue(id)
	require.NoError(t, err)
	tok2, err := second.Issue(id)
	require.NoError(t, err)

	assert.NotEqual(t, tok1, tok2)
}
