// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package vec_test

import "testing/quick"

// quickConfig shortens property runs under the race detector, which
// instruments every slot access of the relocation loops.
func quickConfig() *quick.Config {
	return &quick.Config{MaxCount: 20}
}
