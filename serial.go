// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "code.hybscloud.com/atomix"

// Serial identifies a storage block.
// Each successful non-empty allocation draws the next value from a
// process-wide monotonic counter. The empty block has serial 0.
type Serial = uint32

// counter is the global monotonic counter for block serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing non-zero serial.
func nextSerial() Serial {
	s := counter.Add(1)
	if s == 0 {
		s = counter.Add(1)
	}
	return s
}
