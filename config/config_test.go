package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-config/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type mockNodeParser struct {
	parseNodeFunc func(data []byte, path string) (*tree.Node, error)
}

func (m *mockNodeParser) ParseNode(data []byte, path string) (*tree.Node, error) {
	return m.parseNodeFunc(data, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

func staticFetcher(data string) *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte(data), nil
		},
	}
}

type listenerConfig struct {
	Address string
	changed bool
	err     error
}

func (c *listenerConfig) SetDefaults() bool {
	if c.Address == "" {
		c.Address = ":8080"
		c.changed = true
	}

	return c.changed
}

func (c *listenerConfig) Validate() error {
	return c.err
}

func TestProvider_DefaultsThenValidation(t *testing.T) {
	t.Parallel()

	target := &listenerConfig{}
	parser := &mockParser{
		parseFunc: func(_ []byte, _ any, path string) error {
			if path != "listener" {
				return errors.New("unexpected path")
			}

			return nil
		},
	}

	result, err := Provider(target, "listener")(parser, staticFetcher("data"))

	require.NoError(t, err)
	assert.Same(t, target, result)
	assert.Equal(t, ":8080", result.Address)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	testCases := []struct {
		name      string
		fetchErr  error
		parseErr  error
		targetErr error
		wantErr   error
	}{
		{name: "fetch error", fetchErr: fetchErr, wantErr: fetchErr},
		{name: "parse error", parseErr: parseErr, wantErr: parseErr},
		{name: "validation error", targetErr: validationErr, wantErr: validationErr},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			target := &listenerConfig{err: testCase.targetErr}
			parser := &mockParser{
				parseFunc: func(_ []byte, _ any, _ string) error {
					return testCase.parseErr
				},
			}
			fetcher := &mockDataFetcher{
				fetchFunc: func() ([]byte, error) {
					return []byte("data"), testCase.fetchErr
				},
			}

			result, err := Provider(target, "")(parser, fetcher)

			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestTreeProvider_Success(t *testing.T) {
	t.Parallel()

	parser := &mockNodeParser{
		parseNodeFunc: func(data []byte, path string) (*tree.Node, error) {
			node := tree.New()

			err := node.Set(path+".raw", tree.String(string(data)))
			if err != nil {
				return nil, err
			}

			return node, nil
		},
	}

	node, err := TreeProvider("section")(parser, staticFetcher("payload"))

	require.NoError(t, err)
	assert.Equal(t, "payload", node.GetString("section.raw", ""))
}

func TestTreeProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")

	testCases := []struct {
		name     string
		fetchErr error
		parseErr error
		wantErr  error
		message  string
	}{
		{name: "fetch error", fetchErr: fetchErr, wantErr: fetchErr, message: "reading data error"},
		{name: "parse error", parseErr: parseErr, wantErr: parseErr, message: "parsing error"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			parser := &mockNodeParser{
				parseNodeFunc: func(_ []byte, _ string) (*tree.Node, error) {
					return nil, testCase.parseErr
				},
			}
			fetcher := &mockDataFetcher{
				fetchFunc: func() ([]byte, error) {
					return nil, testCase.fetchErr
				},
			}

			node, err := TreeProvider("")(parser, fetcher)

			require.ErrorIs(t, err, testCase.wantErr)
			assert.Contains(t, err.Error(), testCase.message)
			assert.Nil(t, node)
		})
	}
}

func TestOverrides(t *testing.T) {
	t.Parallel()

	node, err := tree.FromFlat(tree.Flat{
		tree.K("db.host"): tree.String("localhost"),
		tree.K("db.port"): tree.Int(5432),
	})
	require.NoError(t, err)

	result, err := Overrides(tree.Flat{tree.K("db.port"): tree.Int(5433)})(node)

	require.NoError(t, err)
	assert.Same(t, node, result)
	assert.Equal(t, "localhost", result.GetString("db.host", ""))
	assert.Equal(t, int64(5433), result.GetInt("db.port", 0))
}

func TestOverrides_Empty(t *testing.T) {
	t.Parallel()

	node := tree.New()

	result, err := Overrides(nil)(node)

	require.NoError(t, err)
	assert.Same(t, node, result)
}

func TestOverrides_Conflict(t *testing.T) {
	t.Parallel()

	node, err := tree.FromFlat(tree.Flat{tree.K("db"): tree.String("off")})
	require.NoError(t, err)

	result, err := Overrides(tree.Flat{tree.K("db.port"): tree.Int(1)})(node)

	require.ErrorIs(t, err, tree.ErrPathConflict)
	assert.Contains(t, err.Error(), "applying overrides")
	assert.Nil(t, result)
}
