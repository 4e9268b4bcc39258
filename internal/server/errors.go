// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package server

import "errors"

var (
	errNoServerAddress = errors.New("no http address to listen on")
)
