//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const choices = "key-alpha @ Alpha\nkey-beta @ Beta\nkey-gamma @ Gamma\n"

func TestIchooseSearchAndConfirm(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(ichooseBin, strings.NewReader(choices), "--title", "pick one"))
	require.True(t, tf.SeePlain("Search :"), "search field should be drawn")
	require.True(t, tf.SeePlain(" pick one "), "title should be drawn")
	require.True(t, tf.SeePlain("Gamma"), "items should be listed")

	require.NoError(t, tf.Type("bet"))
	require.True(t, tf.SeePlain("> Beta"), "Beta should be highlighted")

	require.NoError(t, tf.SendKeys(KeyEnter))
	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	out := tf.SnapshotPlain()
	assert.Contains(t, out, "key-beta\n")
	assert.NotContains(t, out, "key-alpha")
}

func TestIchooseCancel(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(ichooseBin, strings.NewReader(choices)))
	require.True(t, tf.SeePlain("Alpha"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, code, "nothing chosen exits with 1")
	assert.NotContains(t, tf.SnapshotPlain(), "key-")
}

func TestIchooseMultiSelect(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(ichooseBin, strings.NewReader(choices), "--multi"))
	require.True(t, tf.SeePlain("[ ] Gamma"))
	require.True(t, tf.SeePlain("<Right> Toggle select"), "legend should show the toggle keys")

	// Gamma, then Alpha, so the output order comes from the keys
	for _, key := range []string{KeyDown, KeyDown, KeyRight, KeyUp, KeyUp, KeyRight} {
		require.NoError(t, tf.SendKeys(key))
		time.Sleep(20 * time.Millisecond)
	}
	require.True(t, tf.SeePlain("> [X] Alpha"))

	require.NoError(t, tf.SendKeys(KeyEnter))
	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, tf.SnapshotPlain(), "key-alpha\nkey-gamma\n")
}
