package telegram

import (
	"errors"
	"testing"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{"option", buildOptionCallback("abcd1234", 3, 1), actionOption, []string{"abcd1234", "3", "1"}},
		{"confirm", buildConfirmCallback("abcd1234", 0), actionConfirm, []string{"abcd1234", "0"}},
		{"finish", buildFinishCallback("abcd1234"), actionFinish, []string{"abcd1234"}},
		{"restart", buildRestartCallback("abcd1234"), actionRestart, []string{"abcd1234"}},
		{"lang", buildLangCallback("abcd1234", 2), actionLang, []string{"abcd1234", "2"}},
		{"noop", buildNoopCallback(), actionNoop, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.data) > 64 {
				t.Fatalf("callback data %q exceeds 64 bytes", tt.data)
			}

			cd := decodeCallback(tt.data)
			if cd.Action != tt.action {
				t.Errorf("action = %q, want %q", cd.Action, tt.action)
			}
			if len(cd.Params) != len(tt.params) {
				t.Fatalf("params = %v, want %v", cd.Params, tt.params)
			}
			for i := range tt.params {
				if cd.Params[i] != tt.params[i] {
					t.Errorf("param %d = %q, want %q", i, cd.Params[i], tt.params[i])
				}
			}
			if cd.encode() != tt.data {
				t.Errorf("encode() = %q, want %q", cd.encode(), tt.data)
			}
		})
	}
}

func TestCallbackDataIntParam(t *testing.T) {
	cd := decodeCallback("opt:abcd1234:2:x")

	if got, err := cd.intParam(1); err != nil || got != 2 {
		t.Errorf("intParam(1) = %d, %v; want 2, nil", got, err)
	}
	if _, err := cd.intParam(2); !errors.Is(err, errMalformedCallback) {
		t.Errorf("intParam(2) error = %v, want errMalformedCallback", err)
	}
	if _, err := cd.intParam(5); !errors.Is(err, errMalformedCallback) {
		t.Errorf("intParam(5) error = %v, want errMalformedCallback", err)
	}
	if _, err := decodeCallback("opt:t:-1").intParam(1); !errors.Is(err, errMalformedCallback) {
		t.Errorf("negative index error = %v, want errMalformedCallback", err)
	}
	if tag := cd.sessionTag(); tag != "abcd1234" {
		t.Errorf("sessionTag() = %q", tag)
	}
	if tag := decodeCallback("noop").sessionTag(); tag != "" {
		t.Errorf("noop sessionTag() = %q, want empty", tag)
	}
}
