// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package platform

import "golang.org/x/sys/cpu"

func init() {
	detectX86(cpu.X86.HasAVX512F, cpu.X86.HasAVX2, cpu.X86.HasSSE2)
}

func detectX86(hasAVX512, hasAVX2, hasSSE2 bool) {
	switch {
	case hasAVX512:
		currentLevel = LevelAVX512
		currentWidth = 64
	case hasAVX2:
		currentLevel = LevelAVX2
		currentWidth = 32
	case hasSSE2:
		currentLevel = LevelSSE2
		currentWidth = 16
	default:
		setScalar()
	}
}
