// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFilter selects devices by vendor and, optionally, product ID.
type IDFilter struct {
	// VendorID is the idVendor value to match.
	VendorID uint16

	// ProductID is the idProduct value to match. Ignored when
	// AnyProduct is set.
	ProductID uint16

	// AnyProduct matches every product of the vendor. Set when the
	// filter was written without a product part.
	AnyProduct bool
}

// ParseIDFilter parses a filter written as "vvvv" or "vvvv:pppp",
// both parts hexadecimal. The vendor-only form matches all of that
// vendor's products.
func ParseIDFilter(text string) (IDFilter, error) {
	vendorText, productText, hasProduct := strings.Cut(text, ":")

	vendor, err := strconv.ParseUint(vendorText, 16, 16)
	if err != nil {
		return IDFilter{}, fmt.Errorf("parsing device filter %q: bad vendor id %q", text, vendorText)
	}
	filter := IDFilter{VendorID: uint16(vendor), AnyProduct: !hasProduct}
	if !hasProduct {
		return filter, nil
	}

	product, err := strconv.ParseUint(productText, 16, 16)
	if err != nil {
		return IDFilter{}, fmt.Errorf("parsing device filter %q: bad product id %q", text, productText)
	}
	filter.ProductID = uint16(product)
	return filter, nil
}

// Matches reports whether the device satisfies this filter.
func (f IDFilter) Matches(device DeviceInfo) bool {
	if device.VendorID != f.VendorID {
		return false
	}
	return f.AnyProduct || device.ProductID == f.ProductID
}

// MatchesAny reports whether the device satisfies at least one of the
// filters. An empty filter list matches everything, so unfiltered
// listings need no special case.
func MatchesAny(device DeviceInfo, filters []IDFilter) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter.Matches(device) {
			return true
		}
	}
	return false
}
