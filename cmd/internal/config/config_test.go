package config

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParameterStore struct {
	pages [][]types.Parameter
	err   error
	paths []string
}

func (f *fakeParameterStore) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	f.paths = append(f.paths, aws.ToString(in.Path))
	if f.err != nil {
		return nil, f.err
	}

	page := 0
	if in.NextToken != nil {
		page = 1
	}
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[page]}
	if page+1 < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func param(name, value string) types.Parameter {
	return types.Parameter{Name: aws.String(name), Value: aws.String(value)}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DB_PATH", "")
		t.Setenv("SEED_DEMO", "")
		t.Setenv("MACHINE_ID", "")

		c, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, c.Port)
		assert.Equal(t, DefaultDBPath, c.DBPath)
		assert.False(t, c.SeedDemo)
		assert.Equal(t, ":7070", c.Addr())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("DB_PATH", "/tmp/accounts.db")
		t.Setenv("SEED_DEMO", "true")
		t.Setenv("MACHINE_ID", "12")

		c, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, &Config{Port: 8080, DBPath: "/tmp/accounts.db", SeedDemo: true, MachineID: 12}, c)
	})

	t.Run("invalid values", func(t *testing.T) {
		for key, value := range map[string]string{
			"PORT":       "eighty",
			"SEED_DEMO":  "maybe",
			"MACHINE_ID": "4096",
		} {
			t.Setenv("PORT", "")
			t.Setenv("SEED_DEMO", "")
			t.Setenv("MACHINE_ID", "")
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.Error(t, err, key)
		}
	})
}

func TestLoadProdEnv(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("SEED_DEMO", "")

	store := &fakeParameterStore{pages: [][]types.Parameter{
		{param(EnvVarsPrefix+"DB_PATH", "/data/prod.db")},
		{param(EnvVarsPrefix+"SEED_DEMO", "false")},
	}}

	require.NoError(t, LoadProdEnv(context.Background(), store, EnvVarsPrefix))
	assert.Equal(t, "/data/prod.db", os.Getenv("DB_PATH"))
	assert.Equal(t, "false", os.Getenv("SEED_DEMO"))
	assert.Equal(t, []string{EnvVarsPrefix, EnvVarsPrefix}, store.paths)
}

func TestLoadProdEnv_Error(t *testing.T) {
	store := &fakeParameterStore{err: errors.New("access denied")}

	err := LoadProdEnv(context.Background(), store, EnvVarsPrefix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
