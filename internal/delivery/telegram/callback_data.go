package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionPick = "pick"
	actionNext = "next"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildPickCallback builds callback data for picking an option of a round.
func buildPickCallback(roundID uuid.UUID, optionIndex int) string {
	return callbackData{
		Action: actionPick,
		Params: []string{roundID.String(), strconv.Itoa(optionIndex)},
	}.encode()
}

// buildNextCallback builds callback data for moving on to the next round.
func buildNextCallback(roundID uuid.UUID) string {
	return callbackData{
		Action: actionNext,
		Params: []string{roundID.String()},
	}.encode()
}

// parsePick extracts the round ID and option index from pick params.
func parsePick(cd callbackData) (uuid.UUID, int, error) {
	if len(cd.Params) != 2 {
		return uuid.Nil, 0, errBadCallback
	}

	roundID, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return uuid.Nil, 0, errBadCallback
	}

	idx, err := strconv.Atoi(cd.Params[1])
	if err != nil {
		return uuid.Nil, 0, errBadCallback
	}

	return roundID, idx, nil
}

// parseNext extracts the round ID from next params.
func parseNext(cd callbackData) (uuid.UUID, error) {
	if len(cd.Params) != 1 {
		return uuid.Nil, errBadCallback
	}

	roundID, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return uuid.Nil, errBadCallback
	}

	return roundID, nil
}
