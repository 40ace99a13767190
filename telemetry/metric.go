//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry instruments tool invocations. Instruments default
// to no-ops, so serving without a meter provider costs nothing; hosts
// that want metrics install their provider through InitMeterProvider.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "trpc.group/trpc-go/trpc-agent-catalog-go"

// Instrument names.
const (
	metricToolCallCount    = "catalog.tool.calls"
	metricToolCallDuration = "catalog.tool.duration"
)

// Attribute keys attached to every tool-call measurement.
const (
	KeyTool    = "catalog.tool.name"
	KeyOutcome = "catalog.tool.outcome"
)

// Outcome values for KeyOutcome.
const (
	// OutcomeOK marks a call that produced a regular result.
	OutcomeOK = "ok"
	// OutcomeInvalidArgument marks a call rejected at input validation.
	OutcomeInvalidArgument = "invalid_argument"
	// OutcomeMiss marks a call whose lookup found nothing; the reply is
	// still a regular text result.
	OutcomeMiss = "miss"
)

var (
	// MeterProvider is replaced by InitMeterProvider.
	MeterProvider metric.MeterProvider = noop.NewMeterProvider()

	toolCallCount    metric.Int64Counter     = noop.Int64Counter{}
	toolCallDuration metric.Float64Histogram = noop.Float64Histogram{}
)

// InitMeterProvider installs mp and recreates every instrument on it.
func InitMeterProvider(mp metric.MeterProvider) error {
	MeterProvider = mp
	meter := mp.Meter(meterName)

	var err error
	if toolCallCount, err = meter.Int64Counter(
		metricToolCallCount,
		metric.WithDescription("Total number of tool invocations"),
		metric.WithUnit("1"),
	); err != nil {
		return fmt.Errorf("failed to create metric %s: %w", metricToolCallCount, err)
	}
	if toolCallDuration, err = meter.Float64Histogram(
		metricToolCallDuration,
		metric.WithDescription("Duration of tool invocations"),
		metric.WithUnit("s"),
	); err != nil {
		return fmt.Errorf("failed to create metric %s: %w", metricToolCallDuration, err)
	}
	return nil
}

// ReportToolCall records one tool invocation with its outcome and
// duration.
func ReportToolCall(ctx context.Context, tool, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(KeyTool, tool),
		attribute.String(KeyOutcome, outcome),
	)
	toolCallCount.Add(ctx, 1, attrs)
	toolCallDuration.Record(ctx, duration.Seconds(), attrs)
}
