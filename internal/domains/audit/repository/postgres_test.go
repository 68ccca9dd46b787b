package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONArg(t *testing.T) {
	assert.Nil(t, jsonArg(nil))
	assert.Nil(t, jsonArg([]byte{}))
	assert.Equal(t, `{"id":"a"}`, jsonArg([]byte(`{"id":"a"}`)))
}

func TestAuditSQLIsAppendOnly(t *testing.T) {
	for _, q := range []string{insertEntrySQL, listEntriesSQL} {
		assert.NotContains(t, q, "UPDATE audit_log")
		assert.NotContains(t, q, "DELETE FROM audit_log")
	}
	assert.Contains(t, listEntriesSQL, "ORDER BY a.created_at DESC")
	assert.Contains(t, listEntriesSQL, "LEFT JOIN admin_users")
}
