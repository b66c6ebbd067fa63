package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "", Clean(""), "empty keeps its unset meaning")
	assert.Equal(t, "a/b", Clean("a//b/"))
	assert.Equal(t, ".", Clean("."))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "name.v", Join("", "name.v"))
	assert.Equal(t, "d/name.v", Join("d", "name.v"))
	assert.Equal(t, "/abs/name.v", Join("", "/abs/name.v"))
}

func TestSubstitute(t *testing.T) {
	t.Setenv("PATHUTIL_TEST_DIR", "/proj")
	assert.Equal(t, "/proj/rtl", Substitute("$PATHUTIL_TEST_DIR/rtl"))
	assert.Equal(t, "/proj/rtl", Substitute("${PATHUTIL_TEST_DIR}/rtl"))
	assert.Equal(t, "plain/path", Substitute("plain/path"))
	assert.Equal(t, "/rtl", Substitute("$PATHUTIL_TEST_UNSET/rtl"))
}

func TestStripExt(t *testing.T) {
	assert.Equal(t, "top", StripExt("rtl/top.v"))
	assert.Equal(t, "top.wrap", StripExt("top.wrap.cpp"))
	assert.Equal(t, "noext", StripExt("noext"))
}

func TestHasSuffix(t *testing.T) {
	assert.True(t, HasSuffix("main.cpp", ".cpp"))
	assert.False(t, HasSuffix(".cpp", ".cpp"), "bare extension is not a match")
	assert.False(t, HasSuffix("main.c", ".cpp"))
}
