package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound, 404},
		{ErrConflict, 409},
		{ErrEmailExists, 409},
		{ErrInvalidCredentials, 400},
		{ErrInvalidVerifyToken, 400},
		{ErrInvalidRefreshToken, 400},
		{ErrEmptyMessage, 400},
		{errors.New("pg connection refused"), 500},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		HandleServiceError(rr, tc.err, "fallback message")
		require.Equal(t, tc.status, rr.Code, "err %v", tc.err)

		var env Envelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		require.False(t, env.Success)
	}
}

func TestHandleServiceErrorUnwrapsWrappedSentinels(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleServiceError(rr, fmt.Errorf("looking up job: %w", ErrNotFound), "fallback")
	require.Equal(t, 404, rr.Code)
}

func TestInternalErrorsAreNotEchoed(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleServiceError(rr, errors.New("dial tcp 10.0.0.5:5432: connect refused"), "Failed to load job")
	require.NotContains(t, rr.Body.String(), "10.0.0.5")
}
