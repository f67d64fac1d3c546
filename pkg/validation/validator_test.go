package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
	Age   *uint8  `json:"age" binding:"required"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	return c.ShouldBindJSON(&p)
}

func TestToDetails(t *testing.T) {
	cases := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "missing fields use json names",
			body: `{"name":"Ann"}`,
			want: map[string]string{"email": "is required", "age": "is required"},
		},
		{
			name: "syntax error",
			body: `{"name":`,
			want: map[string]string{"payload": "invalid json"},
		},
		{
			name: "wrong type",
			body: `{"name":"Ann","email":"a@x.com","age":"old"}`,
			want: map[string]string{"age": "must be a number in range"},
		},
		{
			name: "age out of range",
			body: `{"name":"Ann","email":"a@x.com","age":256}`,
			want: map[string]string{"age": "must be a number in range"},
		},
		{
			name: "empty body",
			body: ``,
			want: map[string]string{"payload": "request body is empty"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := bind(t, tc.body)
			require.Error(t, err)
			require.Equal(t, tc.want, ToDetails(err))
		})
	}
}

func TestEmptyValuesSatisfyRequiredPointers(t *testing.T) {
	require.NoError(t, bind(t, `{"name":"","email":"","age":0}`))
}

func TestToDetailsNil(t *testing.T) {
	require.Nil(t, ToDetails(nil))
}
