package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionOption  = "opt"
	actionConfirm = "confirm"
	actionFinish  = "finish"
	actionRestart = "restart"
	actionLang    = "lang"
	actionNoop    = "noop"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
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
	if len(parts) == 0 {
		return callbackData{}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
	}
}

// intParam returns the i-th parameter as a non-negative integer.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, errMalformedCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil || n < 0 {
		return 0, errMalformedCallback
	}
	return n, nil
}

// sessionTag returns the session tag carried as the first parameter.
func (cd callbackData) sessionTag() string {
	if len(cd.Params) == 0 {
		return ""
	}
	return cd.Params[0]
}

// buildOptionCallback builds callback data for toggling an option.
func buildOptionCallback(tag string, question, option int) string {
	return callbackData{
		Action: actionOption,
		Params: []string{tag, strconv.Itoa(question), strconv.Itoa(option)},
	}.encode()
}

// buildConfirmCallback builds callback data for confirming a question.
func buildConfirmCallback(tag string, question int) string {
	return callbackData{
		Action: actionConfirm,
		Params: []string{tag, strconv.Itoa(question)},
	}.encode()
}

// buildFinishCallback builds callback data for finishing the quiz.
func buildFinishCallback(tag string) string {
	return callbackData{Action: actionFinish, Params: []string{tag}}.encode()
}

// buildRestartCallback builds callback data for restarting the quiz.
func buildRestartCallback(tag string) string {
	return callbackData{Action: actionRestart, Params: []string{tag}}.encode()
}

// buildLangCallback builds callback data for switching the language while
// looking at question.
func buildLangCallback(tag string, question int) string {
	return callbackData{
		Action: actionLang,
		Params: []string{tag, strconv.Itoa(question)},
	}.encode()
}

func buildNoopCallback() string {
	return actionNoop
}
