package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_WRITE_HOST", "db")
	t.Setenv("POSTGRES_WRITE_DBNAME", "billing")

	require.NoError(t, Load(""))
	c := Get()

	assert.Equal(t, ":8080", c.HttpListenAddr)
	assert.Equal(t, 5*time.Second, c.HttpRequestTimeout)
	assert.Equal(t, "tags", c.ValidationStrategy)
	assert.Equal(t, 10, c.PageSizeDefault)
	assert.Equal(t, 100, c.PageSizeMax)

	// no read replica configured: reads go to the primary
	assert.Equal(t, "db", c.ReadPostgres().Host)
	assert.Equal(t, "billing", c.ReadPostgres().Database)
	assert.Equal(t, 20, c.WritePostgres().MaxOpenConns)

	srv := c.HTTPServer()
	assert.Equal(t, 2500*time.Millisecond, srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.ShutdownTimeout)
	assert.Equal(t, 4*1024*1024, srv.MaxRequestBodySize)
	assert.Zero(t, srv.ReadBufferSize)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("POSTGRES_WRITE_HOST=primary\nPOSTGRES_READ_HOST=replica\nVALIDATION_STRATEGY=rules\nPAGE_SIZE_DEFAULT=25\n"), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"POSTGRES_WRITE_HOST", "POSTGRES_READ_HOST", "VALIDATION_STRATEGY", "PAGE_SIZE_DEFAULT"} {
			_ = os.Unsetenv(k)
		}
	})

	require.NoError(t, Load(path))
	c := Get()

	assert.Equal(t, "rules", c.ValidationStrategy)
	assert.Equal(t, 25, c.PageSizeDefault)
	assert.Equal(t, "replica", c.ReadPostgres().Host)
	assert.Equal(t, "primary", c.WritePostgres().Host)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.env")))
	})

	t.Run("missing primary", func(t *testing.T) {
		t.Setenv("POSTGRES_WRITE_HOST", "")
		assert.ErrorContains(t, Load(""), "POSTGRES_WRITE_HOST")
	})

	t.Run("default page size above max", func(t *testing.T) {
		t.Setenv("POSTGRES_WRITE_HOST", "db")
		t.Setenv("PAGE_SIZE_DEFAULT", "50")
		t.Setenv("PAGE_SIZE_MAX", "20")
		assert.ErrorContains(t, Load(""), "invalid page sizes")
	})
}
