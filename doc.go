/*
Fixed-width unsigned integer viewed as a mutable sequence of smaller unsigned integers.

	p := bitpack.New[uint32, uint8](0x41424344, bitpack.MostSignificantFirst)
	p.String()                      // [41, 42, 43, 44]
	p.SetAt(0, 0x40)                // [40, 42, 43, 44]
	p.Swap(p.Index(1), p.Index(3))  // [40, 44, 43, 42]
	p.Reverse()                     // [42, 43, 44, 40]
	p.Container()                   // 0x42434440

Elements are addressed by signed logical indices that step by the element
width (see Packed). The same container read LeastSignificantFirst yields the
elements in the opposite order.
*/
package bitpack
