// SPDX-License-Identifier: Unlicense OR MIT

package gl

type Enum uint

const (
	COLOR_BUFFER_BIT         = 0x4000
	COMPILE_STATUS           = 0x8b81
	DEPTH_BUFFER_BIT         = 0x100
	DEPTH_TEST               = 0xb71
	EXTENSIONS               = 0x1f03
	FALSE                    = 0
	FRAGMENT_SHADER          = 0x8b30
	INFO_LOG_LENGTH          = 0x8B84
	INVALID_ENUM             = 0x500
	INVALID_FRAMEBUFFER_OP   = 0x506
	INVALID_OPERATION        = 0x502
	INVALID_VALUE            = 0x501
	LESS                     = 0x201
	LINK_STATUS              = 0x8b82
	NO_ERROR                 = 0x0
	NUM_EXTENSIONS           = 0x821D
	OUT_OF_MEMORY            = 0x505
	QUERY_RESULT             = 0x8866
	QUERY_RESULT_AVAILABLE   = 0x8867
	RENDERER                 = 0x1F01
	SCISSOR_TEST             = 0xc11
	SHADING_LANGUAGE_VERSION = 0x8B8C
	STENCIL_BUFFER_BIT       = 0x00000400
	TIME_ELAPSED             = 0x88BF
	TRIANGLES                = 0x4
	TRUE                     = 1
	VENDOR                   = 0x1F00
	VERSION                  = 0x1f02
	VERTEX_SHADER            = 0x8b31
)
