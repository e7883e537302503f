package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// List the image files in dir in lexical order.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// Return the directory holding factor-downsampled copies of the capture. The
// cache directory ('images_<factor>') is generated from the originals on
// first use and reused afterwards.
func scaledImageDir(dir string, factor int) (string, error) {
	if factor <= 1 {
		return filepath.Join(dir, "images"), nil
	}

	scaled := filepath.Join(dir, fmt.Sprintf("images_%d", factor))
	if _, err := os.Stat(scaled); err == nil {
		return scaled, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := minify(dir, scaled, factor); err != nil {
		os.RemoveAll(scaled)
		return "", err
	}
	return scaled, nil
}

// Downsample every original image by factor and write the results to the
// scaled directory as PNG, whatever the source format was.
func minify(dir, scaled string, factor int) error {
	srcDir := filepath.Join(dir, "images")
	srcs, err := listImages(srcDir)
	if err != nil {
		return err
	}
	if len(srcs) == 0 {
		return fmt.Errorf("dataset: no source images under %s", srcDir)
	}

	logger.Noticef("downsampling %d images by %dx into %s", len(srcs), factor, scaled)
	if err = os.MkdirAll(scaled, 0755); err != nil {
		return err
	}

	for _, src := range srcs {
		img, err := DecodeImage(src)
		if err != nil {
			return err
		}

		b := img.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".png"
		f, err := os.Create(filepath.Join(scaled, name))
		if err != nil {
			return err
		}
		err = png.Encode(f, dst)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode an image file into NRGBA form.
func DecodeImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: could not decode %s: %w", path, err)
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	xdraw.Copy(out, image.Point{}, img, img.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Convert a decoded frame to H*W*3 float32 samples in [0, 1], dropping the
// alpha channel. This is the layout the ray sampler consumes.
func Floats(img *image.NRGBA) []float32 {
	b := img.Bounds()
	out := make([]float32, 0, b.Dx()*b.Dy()*3)
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*4 : x*4+3]
			out = append(out, float32(px[0])/255, float32(px[1])/255, float32(px[2])/255)
		}
	}
	return out
}
