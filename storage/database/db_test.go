package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{name: "bad conn", err: driver.ErrBadConn, wantUnavailable: true},
		{name: "conn done", err: sql.ErrConnDone, wantUnavailable: true},
		{name: "dial", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, wantUnavailable: true},
		{name: "pq cannot connect", err: &pq.Error{Code: "08006"}, wantUnavailable: true},
		{name: "pq shutdown", err: &pq.Error{Code: "57P01"}, wantUnavailable: true},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}},
		{name: "no rows", err: sql.ErrNoRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError(tt.err, "querying")
			assert.Error(t, err)
			assert.Equal(t, tt.wantUnavailable, core.IsBackendUnavailable(err))
		})
	}
	assert.NoError(t, MapError(nil, "querying"))
}
