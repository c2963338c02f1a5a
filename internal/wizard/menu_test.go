package wizard_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/devsetup/internal/catalog"
	devtesting "github.com/imamik/devsetup/internal/testing"
	"github.com/imamik/devsetup/internal/wizard"
)

func TestSelectStack(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    catalog.StackID
		wantErr bool
	}{
		{name: "academic", answers: []string{"1"}, want: catalog.StackAcademic},
		{name: "data science", answers: []string{"2"}, want: catalog.StackDataScience},
		{name: "web dev python", answers: []string{"3", "a"}, want: catalog.StackWebPython},
		{name: "web dev javascript", answers: []string{"3", "b"}, want: catalog.StackWebJS},
		{name: "keys normalize case and whitespace", answers: []string{"3", " B "}, want: catalog.StackWebJS},
		{name: "invalid top-level choice", answers: []string{"4"}, wantErr: true},
		{name: "invalid sub-choice", answers: []string{"3", "c"}, wantErr: true},
		{name: "empty input", answers: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := devtesting.NewScriptedPrompter(tt.answers...)

			got, err := wizard.SelectStack(context.Background(), p)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, wizard.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectStackNoRetry(t *testing.T) {
	// A single bad answer must fail immediately; the second scripted answer
	// would only be consumed by a retry loop.
	p := devtesting.NewScriptedPrompter("9", "1")

	_, err := wizard.SelectStack(context.Background(), p)

	require.ErrorIs(t, err, wizard.ErrInvalidSelection)
	assert.Contains(t, err.Error(), `"9"`)
	assert.Len(t, p.Questions, 1)
}

func TestLinePrompterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"maybe\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := wizard.NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Is this Mac connected to power?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/n]")
		})
	}
}

func TestLinePrompterChoose(t *testing.T) {
	t.Run("prints enumerated options and returns the raw key", func(t *testing.T) {
		var out bytes.Buffer
		p := wizard.NewLinePrompter(strings.NewReader("2\n"), &out)

		key, err := p.Choose(context.Background(), "Pick one", []wizard.Option{
			{Key: "1", Label: "First", Description: "the first"},
			{Key: "2", Label: "Second"},
		})

		require.NoError(t, err)
		assert.Equal(t, "2", key)
		assert.Contains(t, out.String(), "1) First - the first")
		assert.Contains(t, out.String(), "2) Second")
	})

	t.Run("returns invalid input untouched", func(t *testing.T) {
		p := wizard.NewLinePrompter(strings.NewReader("x\n"), &bytes.Buffer{})

		key, err := p.Choose(context.Background(), "Pick one", nil)

		require.NoError(t, err)
		assert.Equal(t, "x", key)
	})

	t.Run("exhausted input is an error", func(t *testing.T) {
		p := wizard.NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := p.Choose(context.Background(), "Pick one", nil)

		assert.Error(t, err)
	})
}
