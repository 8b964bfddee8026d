package render

import "image"

// rectFromFloat converts canvas coordinates to the covered pixel rectangle.
func rectFromFloat(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(x), int(y), int(x+w+0.999), int(y+h+0.999))
}
