// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	_ "embed"
)

// catalogFile is the name of the embedded alias table.
const catalogFile = "aliases.yaml"

//go:embed aliases.yaml
var embeddedCatalog []byte
