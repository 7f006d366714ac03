// seehuhn.de/go/wallpaper - seamless symmetric wallpaper patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf generates reference images for the rasterizer tests.
// Each test case is written as a PDF file, which is then converted to a
// grayscale PNG using Ghostscript.
//
// Run this from the raster directory:
//
//	go run ./testcases/genpdf
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/wallpaper/raster/testcases"
)

func main() {
	refDir := flag.String("o", filepath.Join("testdata", "reference"), "output directory")
	keepPDF := flag.Bool("keep-pdf", false, "keep the intermediate PDF files")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if !*keepPDF {
				os.Remove(pdfPath)
			}
			fmt.Println(pngPath)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: gray values are coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// test cases use a top-left origin
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	switch op := tc.Op.(type) {
	case testcases.Fill:
		for cmd, pts := range tc.Path.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}

	case testcases.Stroke:
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		// one subpath per segment, so that no joins are drawn
		for _, seg := range testcases.Segments(tc.Path) {
			page.MoveTo(seg[0].X, seg[0].Y)
			page.LineTo(seg[1].X, seg[1].Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
