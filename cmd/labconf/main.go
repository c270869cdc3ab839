// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/labfont/labconf/cmd/labconf/internal"

func main() {
	internal.Execute()
}
