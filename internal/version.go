package internal

// Version is the current terminex release
const Version = "1.0.0"
