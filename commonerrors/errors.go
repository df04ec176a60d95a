/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types used across the module as well
// as helpers to classify and wrap them. Errors are matched using [errors.Is]
// and so, any error wrapping one of the sentinels below is considered of that
// type.
package commonerrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented     = errors.New("not implemented")
	ErrUndefined          = errors.New("undefined")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrTimeout            = errors.New("timeout")
	ErrLocked             = errors.New("locked")
	ErrNotFound           = errors.New("not found")
	ErrUnsupported        = errors.New("unsupported")
	ErrUnknown            = errors.New("unknown")
	ErrInvalid            = errors.New("invalid")
	ErrConflict           = errors.New("conflict")
	ErrCancelled          = errors.New("cancelled")
)

// New returns an error of type `target` with a description.
func New(target error, description string) error {
	if description == "" {
		return target
	}
	return fmt.Errorf("%w: %v", target, description)
}

// Newf returns an error of type `target` with a formatted description.
func Newf(target error, format string, args ...any) error {
	return New(target, fmt.Sprintf(format, args...))
}

// WrapError returns an error of type `target` retaining the description of the
// cause error.
func WrapError(target error, cause error, description string) error {
	if cause == nil {
		return New(target, description)
	}
	if description == "" {
		return Newf(target, "%v", cause.Error())
	}
	return Newf(target, "%v: %v", description, cause.Error())
}

// WrapErrorf is similar to WrapError but takes a formatted description.
func WrapErrorf(target error, cause error, format string, args ...any) error {
	return WrapError(target, cause, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an ErrUndefined error about the variable named
// `variableName`.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "%v is undefined", variableName)
}

// Any states whether the target error is of one of the types of err.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether the target error is of none of the types of err.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// Ignore returns nil if the error is of one of the types of err and returns
// the error otherwise.
func Ignore(target error, err ...error) error {
	if Any(target, err...) {
		return nil
	}
	return target
}
