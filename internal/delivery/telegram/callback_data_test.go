package telegram

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickCallbackRoundTrip(t *testing.T) {
	id := uuid.New()
	data := buildPickCallback(id, 3)

	assert.LessOrEqual(t, len(data), 64, "telegram limits callback data to 64 bytes")

	cd := decodeCallback(data)
	require.Equal(t, actionPick, cd.Action)

	gotID, idx, err := parsePick(cd)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, 3, idx)
}

func TestNextCallbackRoundTrip(t *testing.T) {
	id := uuid.New()
	cd := decodeCallback(buildNextCallback(id))
	require.Equal(t, actionNext, cd.Action)

	gotID, err := parseNext(cd)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestParseCallback_Malformed(t *testing.T) {
	for _, data := range []string{"pick", "pick:nope:1", "pick:" + uuid.NewString() + ":x", "pick:" + uuid.NewString()} {
		_, _, err := parsePick(decodeCallback(data))
		assert.ErrorIs(t, err, errBadCallback, data)
	}

	for _, data := range []string{"next", "next:nope", "next:" + uuid.NewString() + ":1"} {
		_, err := parseNext(decodeCallback(data))
		assert.ErrorIs(t, err, errBadCallback, data)
	}
}
