package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"valid email login", "me@x.com:abcdef", "me@x.com:abcdef", nil},
		{"valid with surrounding space", "  user123:secret1 ", "user123:secret1", nil},
		{"password containing colon", "login:pa:ss", "login:pa:ss", nil},
		{"no colon", "justalogin", "", ErrCredentialsFormat},
		{"both parts too short", "ab:cd", "", ErrCredentialsShort},
		{"short login", "ab:password", "", ErrCredentialsShort},
		{"short password", "login:pw", "", ErrCredentialsShort},
		{"empty", "", "", ErrCredentialsFormat},
		{"cyrillic parts count as runes", "логин:пароль", "логин:пароль", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateCredentials(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
