package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSONPassesThrough(t *testing.T) {
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(`{"key": "value"}`))
}

func TestCleanJSONBlock_StripsJSONFence(t *testing.T) {
	input := "```json\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_StripsBareFence(t *testing.T) {
	input := "```\n[1, 2, 3]\n```"
	assert.Equal(t, "[1, 2, 3]", CleanJSONBlock(input))
}

func TestCleanJSONBlock_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "{}", CleanJSONBlock("  \n{}\n  "))
}

func TestCleanJSONBlock_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
}
