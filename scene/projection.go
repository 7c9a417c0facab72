package scene

// WorldToView maps a world point into the camera's frame: the camera sits at
// the origin and its rotation is undone, so a camera turned by +θ sees the
// world turned by -θ.
func WorldToView(camera Transform, p Vec2) Vec2 {
	return p.Sub(camera.Translation).Rotate(-camera.Rotation)
}

// ViewToWorld is the inverse of WorldToView.
func ViewToWorld(camera Transform, p Vec2) Vec2 {
	return p.Rotate(camera.Rotation).Add(camera.Translation)
}
