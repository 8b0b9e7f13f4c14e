package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Curvature(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-from", "0.9,0.8,0.95,0.4,0.85", "curvature"}, &out))

	var got map[string]float64
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Contains(t, got, "ricci_scalar")
	assert.Contains(t, got, "omega")
}

func TestRun_NearestByName(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-from", "CAUSAL_RECURSION_FIELD", "nearest"}, &out))
	assert.JSONEq(t, `{"framework":"CAUSAL_RECURSION_FIELD"}`, out.String())
}

func TestRun_Geodesic(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-from", "SEMANTIC_GRAVITY", "-to", "THERMODYNAMIC_EPISTEMIC", "-points", "5", "geodesic"}
	require.NoError(t, run(context.Background(), args, &out))

	var got struct {
		Method string      `json:"method"`
		Path   [][]float64 `json:"path"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Path, 5)
	assert.NotEmpty(t, got.Method)
}

func TestRun_Descend(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-from", "0.9,0.8,0.95,0.4,0.85", "-steps", "3", "descend"}, &out))

	var path [][]float64
	require.NoError(t, json.Unmarshal(out.Bytes(), &path))
	assert.LessOrEqual(t, len(path), 4)
	assert.Equal(t, []float64{0.9, 0.8, 0.95, 0.4, 0.85}, path[0])
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	assert.Error(t, run(ctx, nil, &out), "operation is required")
	assert.Error(t, run(ctx, []string{"teleport"}, &out))
	assert.Error(t, run(ctx, []string{"curvature"}, &out), "missing -from")
	assert.Error(t, run(ctx, []string{"-from", "1,2", "curvature"}, &out))
	assert.Error(t, run(ctx, []string{"-from", "a,b,c,d,e", "curvature"}, &out))
}
