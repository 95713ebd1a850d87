// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import "testing"

var mapTests = []struct {
	in, out string
}{
	{"ic_basic_chevron_left", "ChevronLeft"},
	{"ic_basic_outline_settings", "Settings"},
	{"ic_outline_floppy_disk", "FloppyDisk"},
	{"ic_home", "Home"},
	{"ic_HOME", "Home"},
	{"ic_basic_fill_info", "FillInfo"},
	{"ic_basic_outline_chevron_left", "ChevronLeft"},
	{"ic_arrow-back", "ArrowBack"},
	{"ic_ARROW_BACK", "ArrowBack"},
	{"ic__double__sep_", "DoubleSep"},
	{"chevron_left", "ChevronLeft"},
	{"ic_basic_", UnknownIcon},
	{"ic_", UnknownIcon},
	{"", UnknownIcon},
	{"___", UnknownIcon},
	{"ic_2x_grid", "2xGrid"},
	{"ic_élan", "Élan"},
}

func TestMap(t *testing.T) {
	m := NewMapper(DefaultConfig().Prefixes)
	for _, tt := range mapTests {
		if out := m.Map(tt.in); out != tt.out {
			t.Errorf("Map(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestMapLongestPrefix(t *testing.T) {
	// Order in the list does not matter.
	m := NewMapper([]string{"ic_", "ic_basic_"})
	if out := m.Map("ic_basic_star"); out != "Star" {
		t.Errorf("Map = %q, want Star", out)
	}
}
