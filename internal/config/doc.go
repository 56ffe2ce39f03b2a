// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the optional pipesh YAML configuration file.
//
// A missing file at the default location is not an error, the defaults are
// used instead. Unknown keys are rejected and every invalid value is
// reported at once.
package config
