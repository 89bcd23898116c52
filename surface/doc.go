// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides raster surfaces for scratch.Controller.
//
// A scratch.Controller only issues erase intents (a filled disc, a cubic
// stroke with a given width and cap). The surfaces in this package turn
// those intents into pixels or records:
//
//   - EraseSurface: rasterizes intents into an alpha mask with gg and
//     composites the mask over a copy of the top-layer image
//   - Recorder: captures intents for inspection and optionally forwards
//     them to another surface
//
// # Registry
//
// Surfaces are also available by name, so hosts can select one from
// configuration:
//
//	s, err := surface.New("erase", topImage)
//
// # Coordinates
//
// Intents arrive in image pixel space with the origin at the bottom-left
// corner. EraseSurface flips them onto the top-left origin of the image.
package surface
