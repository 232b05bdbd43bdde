package platform

func setScalar() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
