/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities to handle optional structure fields,
// represented as pointers. It was inspired by the kubernetes package
// https://pkg.go.dev/k8s.io/utils/pointer.
package field

import "time"

// ToOptionalInt returns a pointer to an int
func ToOptionalInt(i int) *int {
	return &i
}

// OptionalInt returns the value of an optional field or else
// returns defaultValue.
func OptionalInt(ptr *int, defaultValue int) int {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalUint returns a pointer to an uint
func ToOptionalUint(i uint) *uint {
	return &i
}

// OptionalUint returns the value of an optional field or else returns defaultValue.
func OptionalUint(ptr *uint, defaultValue uint) uint {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalInt64 returns a pointer to an int64.
func ToOptionalInt64(i int64) *int64 {
	return &i
}

// OptionalInt64 returns the value of an optional field or else returns defaultValue.
func OptionalInt64(ptr *int64, defaultValue int64) int64 {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalUint64 returns a pointer to an uint64.
func ToOptionalUint64(i uint64) *uint64 {
	return &i
}

// OptionalUint64 returns the value of an optional field or else returns defaultValue.
func OptionalUint64(ptr *uint64, defaultValue uint64) uint64 {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalBool returns a pointer to a bool.
func ToOptionalBool(b bool) *bool {
	return &b
}

// OptionalBool returns the value of an optional field or else returns defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return &s
}

// OptionalString returns the value of an optional field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalDuration returns a pointer to a duration.
func ToOptionalDuration(d time.Duration) *time.Duration {
	return &d
}

// OptionalDuration returns the value of an optional field or else returns defaultValue.
func OptionalDuration(ptr *time.Duration, defaultValue time.Duration) time.Duration {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}
