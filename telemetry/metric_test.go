//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestReportToolCall(t *testing.T) {
	// Before any init the noop defaults absorb measurements.
	ReportToolCall(context.Background(), "search_agents", OutcomeOK, time.Millisecond)

	require.NoError(t, InitMeterProvider(noop.NewMeterProvider()))
	require.NotNil(t, toolCallCount)
	require.NotNil(t, toolCallDuration)

	ReportToolCall(context.Background(), "get_agent", OutcomeMiss, 2*time.Millisecond)
	ReportToolCall(context.Background(), "compare_agents", OutcomeInvalidArgument, 0)
}
