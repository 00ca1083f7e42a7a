/*
Package classname splits utility class tokens into their components.

A token like

    tw-md__hover__!bg-red-500/50

consists of an optional prefix ("tw-"), a list of modifiers ("md", "hover")
separated by the configured separator ("__"), an important marker ("!")
and the base utility ("bg-red-500") with an optional postfix modifier
("/50"). Separators and slashes inside square brackets or parentheses
(arbitrary values and variants) do not count.

Modifiers are sorted before comparing the modifier context of two classes,
as "hover:focus:p-2" and "focus:hover:p-2" style the same state. Arbitrary
variants and order-sensitive modifiers like "before" keep their position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classname
