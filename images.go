package sketch

import (
	"fmt"
	"image"
	"os"
	"time"
)

// DecodeImages decodes a list of image files into image.Image values.
// Files that cannot be read or decoded are skipped, so the result may hold
// fewer images than the input names.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	// A temporary type used to transport decoded images over channels.
	type tmpImage struct {
		img  image.Image
		name string
	}

	// Decode all images specified in parallel.
	imgChans := make([]chan tmpImage, len(imageFiles))
	for i, fName := range imageFiles {
		imgChans[i] = make(chan tmpImage)
		go func(i int, fName string) {
			file, err := os.Open(fName)
			if err != nil {
				fmt.Println(err)
				close(imgChans[i])
				return
			}
			defer file.Close()

			start := time.Now()
			img, kind, err := image.Decode(file)
			if err != nil {
				fmt.Printf("Could not decode '%s' into a supported image "+
					"format: %s\n", fName, err)
				close(imgChans[i])
				return
			}
			fmt.Printf("Decoded '%s' into image type '%s' (%s).\n",
				fName, kind, time.Since(start))

			imgChans[i] <- tmpImage{
				img:  img,
				name: Basename(fName),
			}
		}(i, fName)
	}

	// Collect the decoded images into a slice of names and a slice of
	// images, preserving input order.
	names := make([]string, 0)
	imgs := make([]image.Image, 0)
	for _, imgChan := range imgChans {
		if tmpImg, ok := <-imgChan; ok {
			names = append(names, tmpImg.name)
			imgs = append(imgs, tmpImg.img)
		}
	}

	return names, imgs
}

// VpCenter inspects the viewport and image geometry and determines where
// the origin of the image should be painted into the viewport.
// An image at least as big as the viewport paints at (0, 0); a smaller
// dimension is centered.
func VpCenter(img image.Image, vpWidth, vpHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < vpWidth {
		xmargin = (vpWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < vpHeight {
		ymargin = (vpHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{X: xmargin, Y: ymargin}
}
