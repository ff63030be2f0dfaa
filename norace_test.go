// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package vec_test

import "testing/quick"

func quickConfig() *quick.Config {
	return &quick.Config{MaxCount: 200}
}
