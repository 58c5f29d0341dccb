// Package imaging provides the white-to-transparent conversion used to
// prepare icon assets.
//
// The Service decodes an image, rewrites every pure-white pixel
// (R=255, G=255, B=255) to be fully transparent, and re-encodes the
// result as a PNG:
//
//	svc := imaging.NewService()
//	out, err := svc.WhiteToTransparent(ctx, "sidebar-icon.png", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written to", out)
//
// Input formats are whatever decoders are registered: PNG, JPEG, GIF,
// BMP, TIFF and WebP. The output is always PNG, since it is the format
// that carries the alpha channel.
package imaging
