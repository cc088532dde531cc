/*
Copyright © 2026 the TRIFetch authors.
This file is part of TRIFetch.

TRIFetch is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TRIFetch is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TRIFetch.  If not, see <http://www.gnu.org/licenses/>.
*/

package trifetch

// WasteManagementColumn is the name of the transfer quantity table
// column that holds coded waste management methods.
const WasteManagementColumn = "TRI_TRANSFER_QTY.TYPE_OF_WASTE_MANAGEMENT"

// wasteManagementDescriptions translates TRI waste management method
// codes into descriptions, as listed in the TRI reporting form
// instructions.
var wasteManagementDescriptions = map[string]string{
	"P91": "Waste water treatment",
	"M56": "Energy Recovery",
	"M50": "Incineration/Thermal Treatment",
	"M64": "Other Landfills",
	"M24": "Metals Recovery",
	"M26": "Other Reuse or Recovery",
	"M41": "Solidification/Stabilization - Metals and Metal Category Compounds only",
	"M90": "Other Off-Site Management",
	"M61": "Wastewater Treatment (Excluding POTW)",
	"M93": "Transfer to Waste Broker - Recycling ",
	"M92": "Transfer to Waste Broker - Energy Recovery",
	"M94": "Transfer to Waste Broker - Disposal",
	"M20": "Solvents/Organics Recovery",
	"M99": "Unknown",
	"M54": "Incineration/Insignificant Fuel Value ",
	"M95": "Transfer to Waste Broker - Waste Treatment",
	"M62": "Wastewater Treatment (Excluding POTW) - Metals and Metal Category Compounds only",
	"M79": "Other Land Disposal",
	"M65": "RCRA Subtitle C Landfills",
	"M69": "Other Waste Treatment",
	"M40": "Solidification/Stabilization",
	"M73": "Land Treatment",
	"M10": "Storage Only",
	"M81": "Underground Injection to Class I Wells",
	"M66": "Subtitle C Surface Impoundment",
	"M67": "Other Surface Impoundments",
	"M28": "Acid Regeneration",
	"M82": "Underground Injection to Class II- V Wells",
	"M72": "Landfill/Disposal Surface Impoundment",
}

// WasteManagementDescription returns the description of a waste
// management method code, and reports whether the code is a known one.
func WasteManagementDescription(code string) (string, bool) {
	d, ok := wasteManagementDescriptions[code]
	return d, ok
}

// DescribeWasteManagement replaces waste management method codes in
// the TRI_TRANSFER_QTY.TYPE_OF_WASTE_MANAGEMENT column with their
// descriptions, in place. Unrecognized codes are left unchanged, so
// applying it more than once has no further effect. Tables without the
// column are left untouched.
func (t *Table) DescribeWasteManagement() {
	i, err := t.ColIndex(WasteManagementColumn)
	if err != nil {
		return
	}
	for _, row := range t.Rows {
		if d, ok := wasteManagementDescriptions[row[i]]; ok {
			row[i] = d
		}
	}
}
