package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"bindings.md":          {Data: []byte("# Bindings\n\nStrong and weak")},
		"option-lang.txt":      {Data: []byte("Language help")},
		"notes.txxt":           {Data: []byte("Custom extension")},
		"ignore.json":          {Data: []byte("{}")},
		"advanced/schemes.txt": {Data: []byte("Scheme help")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testSource())
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"bindings", "option-lang", "schemes"}, tm.ListTopics())

		topic, ok := tm.GetTopic("bindings")
		require.True(t, ok)
		assert.Equal(t, "# Bindings\n\nStrong and weak", topic.Content)
		assert.Equal(t, "bindings.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testSource(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil source", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})

	t.Run("empty source", func(t *testing.T) {
		tm := New(fstest.MapFS{})
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.Load())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"bindings", "bindings", true},
		{"option-lang", "option-lang", true},
		{"lang", "option-lang", true},
		{"--lang", "option-lang", true},
		{"-lang", "option-lang", true},
		{"-l", "", false},
		{"schemes", "schemes", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteList(&buf, "fontweak")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  bindings\n  schemes\n")
	assert.Contains(t, out, "Option topics:\n  --lang\n")
	assert.Contains(t, out, "Use 'fontweak help <topic>'")

	buf.Reset()
	New(nil).WriteList(&buf, "fontweak")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "fontweak", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show preferences",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func TestInitialize(t *testing.T) {
	root := newRoot()
	tm, err := Initialize(root, testSource())
	require.NoError(t, err)
	require.NotNil(t, tm)

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	t.Run("topic", func(t *testing.T) {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "schemes"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Scheme help", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("command help", func(t *testing.T) {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs([]string{"help", "show"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Show preferences")
	})

	t.Run("completion", func(t *testing.T) {
		completions, directive := helpCmd.ValidArgsFunction(helpCmd, nil, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		assert.Contains(t, completions, "topics")
		assert.Contains(t, completions, "show")
		assert.Contains(t, completions, "bindings")
	})
}

func TestEmbeddedContent(t *testing.T) {
	tm := New(Content())
	require.NoError(t, tm.Load())

	for _, name := range []string{"bindings", "configuration", "fonts-conf", "options", "schemes"} {
		_, ok := tm.GetTopic(name)
		assert.True(t, ok, name)
	}
	_, ok := tm.GetTopic("--lang")
	assert.True(t, ok)
}

func TestGlamourRendererPassesThroughText(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))

	out := (&GlamourRenderer{Style: "notty", Width: 40}).Render("# Title", ".md")
	assert.Contains(t, out, "Title")
}
