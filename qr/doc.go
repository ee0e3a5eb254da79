// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package qr renders the public feedback URL as a QR code PNG.

	png, err := qr.Generate("https://rate.example.com")

The fixed /feedback path is appended to the base URL (scheme + host, any
trailing slash stripped) before encoding. Error correction level Low keeps
the symbol small; the image size reproduces the 10px-module, 4-module-border
output the printed material was designed around.
*/
package qr
