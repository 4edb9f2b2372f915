package uefi

// efiCall3 and efiCall5 jump into a firmware entry point following the
// Microsoft x64 calling convention mandated by the UEFI specification. They
// are the only two argument shapes the binding layer needs (LocateProtocol
// and GetMemoryMap respectively).

func efiCall3(fn, a1, a2, a3 uintptr) uintptr

func efiCall5(fn, a1, a2, a3, a4, a5 uintptr) uintptr
