package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hscells/classy/instance"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.Wrap(instance.ErrInsufficientData, "empty training set"))
	assert.Contains(t, buf.String(), "empty training set")
	assert.Contains(t, buf.String(), instance.ErrInsufficientData.Error())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, report{Run: "kfold"}, "json"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "kfold", decoded["run"])

	buf.Reset()
	assert.Error(t, write(&buf, report{}, "xml"))
	assert.Zero(t, buf.Len())
}
