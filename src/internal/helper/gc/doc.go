// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the application. The alias generator accumulates
// alias characters in a pooled buffer, and the catalog renderer stages its
// output in one before writing it out.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
