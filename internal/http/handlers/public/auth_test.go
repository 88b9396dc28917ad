package public

import (
	"net/http"
	"testing"

	"github.com/catalog-next/internal/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)
	user := f.createUser("member@example.com", "secret123")

	env := f.do(http.MethodPost, "/api/v1/auth/login", 0, `{"email":"Member@Example.com","password":"secret123"}`)
	require.Equal(t, response.CodeOK, env.StatusCode, env.Msg)
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeData(t, env, &data)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, user.ID, data.User.ID)

	wrong := f.do(http.MethodPost, "/api/v1/auth/login", 0, `{"email":"member@example.com","password":"nope"}`)
	assert.Equal(t, response.CodeUnauthorized, wrong.StatusCode)
	assert.Equal(t, "Incorrect email or password", wrong.Msg)

	assert.Equal(t, response.CodeBadRequest, f.do(http.MethodPost, "/api/v1/auth/login", 0, `{"email":"not-an-email"}`).StatusCode)
}
